// Copyright 2025 The Go A2UI Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui

import (
	"fmt"
	"log/slog"
	"strings"
)

// GetMessageText extracts and joins all text parts of a message with
// the given delimiter. Non-text parts are skipped.
func GetMessageText(m *Message, delimiter string) string {
	if m == nil {
		return ""
	}

	var texts []string
	for _, pw := range m.Parts {
		if pw == nil {
			continue
		}
		if tp, ok := pw.GetPart().(*TextPart); ok {
			texts = append(texts, tp.Text)
		}
	}

	return strings.Join(texts, delimiter)
}

// GetDataParts returns all data parts contained in the given parts, in
// order. Rendering-protocol messages arrive as data parts.
func GetDataParts(parts []*PartWrapper) []*DataPart {
	var out []*DataPart
	for _, pw := range parts {
		if pw == nil {
			continue
		}
		if dp, ok := pw.GetPart().(*DataPart); ok {
			out = append(out, dp)
		}
	}
	return out
}

// AppendArtifactToTask updates a Task with new artifact data from a
// streaming event.
//
// Handles creating the artifacts list if it doesn't exist, adding new
// artifacts, and appending parts to an existing artifact based on the
// event's append flag. The client itself never reassembles chunks;
// callers that track a Task can use this helper per event.
func AppendArtifactToTask(task *Task, event *TaskArtifactUpdateEvent) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}
	if event == nil || event.Artifact == nil {
		return fmt.Errorf("event artifact cannot be nil")
	}

	if !event.Append {
		// New artifact, or wholesale replacement of one with the same id.
		for i, existing := range task.Artifacts {
			if existing.ArtifactID == event.Artifact.ArtifactID {
				task.Artifacts[i] = event.Artifact
				return nil
			}
		}
		task.Artifacts = append(task.Artifacts, event.Artifact)
		return nil
	}

	for _, existing := range task.Artifacts {
		if existing.ArtifactID == event.Artifact.ArtifactID {
			existing.Parts = append(existing.Parts, event.Artifact.Parts...)
			return nil
		}
	}

	// Append to an artifact never seen; treat the chunk as the start.
	slog.Warn("append chunk for unknown artifact, starting new artifact",
		"taskId", task.ID, "artifactId", event.Artifact.ArtifactID)
	task.Artifacts = append(task.Artifacts, event.Artifact)

	return nil
}
