package api

import "github.com/mptlab/mpt/internal/stage"

// SSE frame types emitted on the chat stream.
const (
	frameMeta           = "meta"
	frameChunk          = "chunk"
	frameInfo           = "info"
	frameProviderSwitch = "provider_switch"
	frameError          = "error"
	frameDone           = "done"
)

type metaFrame struct {
	Type         string      `json:"type"`
	SessionID    string      `json:"sessionId"`
	ScenarioID   string      `json:"scenarioId,omitempty"`
	ScenarioName string      `json:"scenarioName,omitempty"`
	ScriptID     string      `json:"scriptId,omitempty"`
	ScriptName   string      `json:"scriptName,omitempty"`
	CurrentStage stage.Stage `json:"currentStage"`
	StageName    string      `json:"stageName"`
	Provider     string      `json:"provider"`
}

type chunkFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type infoFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type providerSwitchFrame struct {
	Type     string `json:"type"`
	Provider string `json:"provider"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type doneFrame struct {
	Type         string      `json:"type"`
	Phase        string      `json:"phase"`
	CurrentStage stage.Stage `json:"currentStage"`
	StageName    string      `json:"stageName"`
}
