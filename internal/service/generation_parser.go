package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/storage"
)

const (
	generationStagePlan = "plan"
	generationStageCode = "code"
)

var fileMarker = regexp.MustCompile(`---FILE:(\S+?)---`)

// ParsePlan extracts the plan object from model output. Prose or a code
// fence around the object and fields the plan does not use are tolerated;
// anything else is a GenerationError.
func ParsePlan(output string) (*AppPlan, error) {
	text := strings.TrimSpace(output)
	if text == "" {
		return nil, apperrors.NewGenerationError(generationStagePlan, "empty output", "")
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, apperrors.NewGenerationError(generationStagePlan, "no JSON object found", text)
	}

	decoder := json.NewDecoder(strings.NewReader(text[start : end+1]))
	var plan AppPlan
	if err := decoder.Decode(&plan); err != nil {
		return nil, apperrors.NewGenerationError(generationStagePlan, "malformed plan JSON: "+err.Error(), text)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.NewGenerationError(generationStagePlan, "unexpected content after plan object", text)
	}

	if reason := validatePlan(&plan); reason != "" {
		return nil, apperrors.NewGenerationError(generationStagePlan, reason, text)
	}
	return &plan, nil
}

func validatePlan(plan *AppPlan) string {
	if strings.TrimSpace(plan.AppName) == "" {
		return "missing appName"
	}
	if plan.Pages == nil {
		return "missing pages"
	}
	if plan.DataModel.Tables == nil {
		return "missing dataModel.tables"
	}
	for i, table := range plan.DataModel.Tables {
		if strings.TrimSpace(table.Name) == "" {
			return fmt.Sprintf("table %d has no name", i)
		}
		for _, column := range table.Columns {
			if strings.TrimSpace(column.Name) == "" || strings.TrimSpace(column.Type) == "" {
				return fmt.Sprintf("table %s has a column without name or type", table.Name)
			}
		}
	}
	return ""
}

// ParseArtifacts splits model output into the three generated files. Every
// file must appear exactly once and be non-blank.
func ParseArtifacts(output string) (*GeneratedArtifacts, error) {
	markers := fileMarker.FindAllStringSubmatchIndex(output, -1)
	if len(markers) == 0 {
		return nil, apperrors.NewGenerationError(generationStageCode, "no ---FILE:name--- blocks found", output)
	}

	files := make(map[string]string, len(markers))
	for i, marker := range markers {
		name := output[marker[2]:marker[3]]
		end := len(output)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		switch name {
		case storage.ScriptFile, storage.DocumentFile, storage.MigrationFile:
		default:
			return nil, apperrors.NewGenerationError(generationStageCode, fmt.Sprintf("unexpected file %q", name), output)
		}
		if _, dup := files[name]; dup {
			return nil, apperrors.NewGenerationError(generationStageCode, fmt.Sprintf("file %s appears more than once", name), output)
		}

		content := stripCodeFence(strings.TrimSpace(output[marker[1]:end]))
		if content == "" {
			return nil, apperrors.NewGenerationError(generationStageCode, fmt.Sprintf("file %s is empty", name), output)
		}
		files[name] = content
	}

	var missing []string
	for _, name := range []string{storage.ScriptFile, storage.DocumentFile, storage.MigrationFile} {
		if _, ok := files[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		got := make([]string, 0, len(files))
		for name := range files {
			got = append(got, name)
		}
		sort.Strings(got)
		reason := fmt.Sprintf("missing %s (got %s)", strings.Join(missing, ", "), strings.Join(got, ", "))
		return nil, apperrors.NewGenerationError(generationStageCode, reason, output)
	}

	return &GeneratedArtifacts{
		Script:    files[storage.ScriptFile],
		Document:  files[storage.DocumentFile],
		Migration: files[storage.MigrationFile],
	}, nil
}

// stripCodeFence removes a markdown fence wrapped around a whole block
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[nl+1:]
	} else {
		return ""
	}
	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
