package tools

import (
	"context"
	"fmt"

	"gitops-manager/internal/agent"
	"gitops-manager/internal/commitlint"
	"gitops-manager/internal/pipeline"
	"gitops-manager/internal/report"
)

// ValidateCommitMessageTool checks commit messages against the
// conventional commit grammar.
type ValidateCommitMessageTool struct {
	svc commitlint.Service
}

// NewValidateCommitMessageTool creates a new validate_commit_message tool.
func NewValidateCommitMessageTool(svc commitlint.Service) agent.Tool {
	return &ValidateCommitMessageTool{svc: svc}
}

func (t *ValidateCommitMessageTool) Name() string {
	return "validate_commit_message"
}

func (t *ValidateCommitMessageTool) Description() string {
	return "Validate a commit message against the Conventional Commits grammar. Returns {valid: bool, reason?: string}."
}

func (t *ValidateCommitMessageTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "Commit message to validate",
			},
		},
		"required": []string{"message"},
	}
}

func (t *ValidateCommitMessageTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	message, ok := params["message"].(string)
	if !ok {
		return nil, fmt.Errorf("message parameter is required")
	}
	return t.svc.Validate(message), nil
}

// TriggerPipelineTool simulates triggering a CI/CD pipeline run.
type TriggerPipelineTool struct {
	svc         pipeline.Service
	defaultRepo string
}

// NewTriggerPipelineTool creates a new trigger_pipeline tool.
func NewTriggerPipelineTool(svc pipeline.Service, defaultRepo string) agent.Tool {
	return &TriggerPipelineTool{svc: svc, defaultRepo: defaultRepo}
}

func (t *TriggerPipelineTool) Name() string {
	return "trigger_pipeline"
}

func (t *TriggerPipelineTool) Description() string {
	return "Trigger a CI/CD pipeline for a repo and branch. Returns the pipeline id and trigger timestamp."
}

func (t *TriggerPipelineTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo_full_name": map[string]interface{}{
				"type":        "string",
				"description": "Repository in owner/name form",
			},
			"branch": map[string]interface{}{
				"type":        "string",
				"description": "Branch to run the pipeline on",
			},
			"pipeline_type": map[string]interface{}{
				"type":        "string",
				"description": "Pipeline type (default 'mock')",
			},
		},
		"required": []string{"branch"},
	}
}

func (t *TriggerPipelineTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, _ := params["repo_full_name"].(string)
	if repo == "" {
		repo = t.defaultRepo
	}
	if repo == "" {
		return nil, fmt.Errorf("repo_full_name parameter is required")
	}

	branch, ok := params["branch"].(string)
	if !ok || branch == "" {
		return nil, fmt.Errorf("branch parameter is required")
	}

	pipelineType, _ := params["pipeline_type"].(string)
	if pipelineType == "" {
		pipelineType = pipeline.DefaultPipelineType
	}

	return t.svc.Trigger(repo, branch, pipelineType), nil
}

// CreateReportFileTool writes a markdown report to the reports directory.
type CreateReportFileTool struct {
	svc         report.Service
	defaultRepo string
}

// NewCreateReportFileTool creates a new create_report_file tool.
func NewCreateReportFileTool(svc report.Service, defaultRepo string) agent.Tool {
	return &CreateReportFileTool{svc: svc, defaultRepo: defaultRepo}
}

func (t *CreateReportFileTool) Name() string {
	return "create_report_file"
}

func (t *CreateReportFileTool) Description() string {
	return "Create a markdown report file in the reports directory. Returns the written path."
}

func (t *CreateReportFileTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"repo": map[string]interface{}{
				"type":        "string",
				"description": "Repository in owner/name form",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Report title",
			},
			"content_md": map[string]interface{}{
				"type":        "string",
				"description": "Report body in markdown",
			},
		},
		"required": []string{"title", "content_md"},
	}
}

func (t *CreateReportFileTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	repo, _ := params["repo"].(string)
	if repo == "" {
		repo = t.defaultRepo
	}
	if repo == "" {
		return nil, fmt.Errorf("repo parameter is required")
	}

	title, ok := params["title"].(string)
	if !ok || title == "" {
		return nil, fmt.Errorf("title parameter is required")
	}

	body, _ := params["content_md"].(string)

	result, err := t.svc.Write(repo, title, body)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return result, nil
}
