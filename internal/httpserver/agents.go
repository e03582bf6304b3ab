package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitops-manager/internal/agent/orchestrator"
	"gitops-manager/internal/report"
	"gitops-manager/pkg/response"
)

// AgentRequest carries the free-text instruction for a single agent run.
type AgentRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatRequest is a free-text message routed to the best-fitting agent.
type ChatRequest struct {
	Message string   `json:"message" binding:"required"`
	History []string `json:"history"`
}

// ChatResponse pairs the routing decision with the agent's answer.
type ChatResponse struct {
	Intent     string `json:"intent"`
	Confidence int    `json:"confidence"`
	Agent      string `json:"agent"`
	Output     string `json:"output"`
	Steps      int    `json:"steps"`
}

// Default instructions for the task-specific endpoints. Callers may
// override them with a message body.
const (
	defaultWatcherMessage    = "Scan the repository for recent activity: new commits on the default branch, open pull requests, and open issues. Update shared memory with what you find and summarise the current state."
	defaultCommitMessage     = "Review the pending change described in shared memory and prepare a Conventional Commits message for it. Validate the message before answering."
	defaultBranchMessage     = "Check the branch layout of the repository and propose or create any automation branch needed for the pending work."
	defaultDeploymentMessage = "Check whether the latest merged change requires a deployment and trigger the pipeline if it does. Record the pipeline run in shared memory."
	defaultReportMessage     = "Generate a status report covering recent repository activity, pipeline runs, and anything notable in shared memory."
)

// listAgents returns the registered agents
// @Summary List Agents
// @Description List the registered agents with their roles and tools
// @Tags Agents
// @Produce json
// @Success 200 {object} map[string]interface{} "Registered agents"
// @Router /agents [get]
func (srv *HTTPServer) listAgents(c *gin.Context) {
	response.OK(c, gin.H{"agents": srv.orchestrator.Agents()})
}

// runAgent runs a named agent with a user message
// @Summary Run Agent
// @Description Run a single agent by name with a free-text instruction
// @Tags Agents
// @Accept json
// @Produce json
// @Param name path string true "Agent name"
// @Param request body AgentRequest true "Instruction"
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /agent/{name} [post]
func (srv *HTTPServer) runAgent(c *gin.Context) {
	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	srv.dispatch(c, c.Param("name"), req.Message)
}

// chat routes a free-text message to the best-fitting agent
// @Summary Chat
// @Description Classify a free-text message and run the matching agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message"
// @Success 200 {object} ChatResponse "Routing decision and agent result"
// @Router /chat [post]
func (srv *HTTPServer) chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ctx := c.Request.Context()

	decision, err := srv.router.Classify(ctx, req.Message, req.History)
	if err != nil {
		srv.l.Errorf(ctx, "chat: classification failed: %v", err)
		response.InternalError(c, err)
		return
	}

	result, err := srv.orchestrator.Run(ctx, decision.Intent.AgentName(), req.Message)
	if err != nil {
		srv.l.Errorf(ctx, "chat: agent run failed: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, ChatResponse{
		Intent:     string(decision.Intent),
		Confidence: decision.Confidence,
		Agent:      result.Agent,
		Output:     result.Output,
		Steps:      result.Steps,
	})
}

// watcherScan scans the repository for new activity
// @Summary Watcher Scan
// @Description Scan the repository for new commits, pull requests, and issues
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /api/watcher/scan [post]
func (srv *HTTPServer) watcherScan(c *gin.Context) {
	srv.dispatch(c, orchestrator.AgentWatcher, messageOrDefault(c, defaultWatcherMessage))
}

// commitCreate prepares a validated commit for the pending change
// @Summary Commit Create
// @Description Prepare and validate a Conventional Commits message for the pending change
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /api/commit/create [post]
func (srv *HTTPServer) commitCreate(c *gin.Context) {
	srv.dispatch(c, orchestrator.AgentCommit, messageOrDefault(c, defaultCommitMessage))
}

// branchManage checks and manages automation branches
// @Summary Branch Manage
// @Description Inspect branches and create automation branches where needed
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /api/branch/manage [post]
func (srv *HTTPServer) branchManage(c *gin.Context) {
	srv.dispatch(c, orchestrator.AgentBranchManager, messageOrDefault(c, defaultBranchMessage))
}

// deploymentCheck decides whether a deployment is needed
// @Summary Deployment Check
// @Description Decide whether the latest change needs a deployment and trigger the pipeline
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /api/deployment/check [post]
func (srv *HTTPServer) deploymentCheck(c *gin.Context) {
	srv.dispatch(c, orchestrator.AgentDeployment, messageOrDefault(c, defaultDeploymentMessage))
}

// reportGenerate writes a markdown status report
// @Summary Report Generate
// @Description Generate a markdown status report of recent activity
// @Tags Tasks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Agent result"
// @Router /api/report/generate [post]
func (srv *HTTPServer) reportGenerate(c *gin.Context) {
	srv.dispatch(c, orchestrator.AgentReport, messageOrDefault(c, defaultReportMessage))
}

// listReports lists generated report files
// @Summary List Reports
// @Description List generated report files, newest first
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Report files"
// @Router /api/reports [get]
func (srv *HTTPServer) listReports(c *gin.Context) {
	files, err := srv.reportSvc.List()
	if err != nil {
		srv.l.Errorf(c.Request.Context(), "reports: list failed: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"reports": files})
}

// readReport returns one report's markdown content
// @Summary Read Report
// @Description Read a generated report by filename
// @Tags Reports
// @Produce json
// @Param filename path string true "Report filename"
// @Success 200 {object} map[string]interface{} "Report content"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /api/reports/{filename} [get]
func (srv *HTTPServer) readReport(c *gin.Context) {
	filename := c.Param("filename")

	content, err := srv.reportSvc.Read(filename)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidName):
			response.Error(c, err, nil)
		case errors.Is(err, report.ErrNotFound):
			response.NotFound(c, err)
		default:
			srv.l.Errorf(c.Request.Context(), "reports: read %q failed: %v", filename, err)
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, gin.H{"filename": filename, "content": content})
}

// readMemory returns the whole shared memory mapping
// @Summary Read Shared Memory
// @Description Return the full shared memory mapping
// @Tags Memory
// @Produce json
// @Success 200 {object} map[string]interface{} "Shared memory"
// @Router /api/memory [get]
func (srv *HTTPServer) readMemory(c *gin.Context) {
	data, err := srv.memoryStore.All(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}

// readMemoryKey returns a single shared memory entry
// @Summary Read Shared Memory Key
// @Description Return a single key from shared memory; absent keys yield null
// @Tags Memory
// @Produce json
// @Param key path string true "Memory key"
// @Success 200 {object} map[string]interface{} "Key and value"
// @Router /api/memory/{key} [get]
func (srv *HTTPServer) readMemoryKey(c *gin.Context) {
	data, err := srv.memoryStore.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}

// dispatch runs a named agent and writes the result envelope.
func (srv *HTTPServer) dispatch(c *gin.Context, agentName, message string) {
	ctx := c.Request.Context()

	result, err := srv.orchestrator.Run(ctx, agentName, message)
	if err != nil {
		if errors.Is(err, orchestrator.ErrUnknownAgent) {
			response.NotFound(c, err)
			return
		}
		srv.l.Errorf(ctx, "agent %s: run failed: %v", agentName, err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}

// messageOrDefault reads an optional {"message": ...} body, falling back
// to the route's canned instruction.
func messageOrDefault(c *gin.Context, fallback string) string {
	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		return fallback
	}
	return req.Message
}
