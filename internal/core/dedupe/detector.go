package dedupe

import (
	"context"
	"fmt"

	"github.com/agenthands/mdm/internal/core/common"
	"github.com/agenthands/mdm/internal/core/model"
	"github.com/agenthands/mdm/internal/core/prompt"
	"github.com/agenthands/mdm/internal/llm"
)

const flowName = "duplicates"

const DefaultPrompt = `You are an expert data quality analyst.

You will determine if two records are duplicates based on their content and the desired level of automation.

Record 1: {{ .Record1 }}
Record 2: {{ .Record2 }}

Automation Level: {{ .AutomationLevel }}

Based on the content of the records and the automation level, determine if they are duplicates. Provide a confidence score between 0 and 1.
Also, suggest an action based on the automation level:
- Low: Suggest manual review.
- Medium: Suggest merging if the confidence score is above 0.7.
- High: Automatically merge if the confidence score is above 0.9.

Output the results in JSON format.`

var ResultSchema = common.MustSchema(`{
	"type": "object",
	"properties": {
		"areDuplicates": {
			"type": "boolean",
			"description": "Whether the two records are duplicates."
		},
		"confidenceScore": {
			"type": "number",
			"minimum": 0,
			"maximum": 1,
			"description": "The confidence score of the duplicate detection."
		},
		"suggestedAction": {
			"type": "string",
			"description": "The suggested action based on the automation level (e.g., merge, review, confirm)."
		}
	},
	"required": ["areDuplicates", "confidenceScore", "suggestedAction"]
}`)

// sampleRequest is rendered at construction to reject overrides that name
// fields the request does not have.
var sampleRequest = model.DuplicateCheckRequest{Record1: "sample", Record2: "sample", AutomationLevel: model.AutomationLow}

type Detector struct {
	LLM    llm.LLMClient
	Prompt *prompt.Template
	// EnforcePolicy replaces the model's suggestedAction with SuggestAction.
	EnforcePolicy bool
}

func NewDetector(llmClient llm.LLMClient, promptText string, enforcePolicy bool) (*Detector, error) {
	tmpl, err := prompt.New("duplicate_detection", promptText, DefaultPrompt)
	if err != nil {
		return nil, err
	}
	if _, err := tmpl.Render(sampleRequest); err != nil {
		return nil, err
	}
	return &Detector{
		LLM:           llmClient,
		Prompt:        tmpl,
		EnforcePolicy: enforcePolicy,
	}, nil
}

// Detect compares two records in a single model round trip.
func (d *Detector) Detect(ctx context.Context, req model.DuplicateCheckRequest) (model.DuplicateCheckResult, error) {
	var zero model.DuplicateCheckResult

	if err := common.ValidateStruct(req); err != nil {
		return zero, err
	}

	text, err := d.Prompt.Render(req)
	if err != nil {
		return zero, err
	}

	response, err := d.LLM.Generate(ctx, llm.Request{
		Name:   d.Prompt.Name(),
		Prompt: text,
		Schema: ResultSchema.Raw(),
	})
	if err != nil {
		return zero, &common.ModelError{Flow: flowName, Err: fmt.Errorf("failed to generate duplicate check: %w", err)}
	}
	if common.IsEmptyResult(response) {
		return zero, &common.EmptyResultError{Flow: flowName}
	}

	result, err := common.ParseJSON[model.DuplicateCheckResult](response, ResultSchema)
	if err != nil {
		return zero, &common.ModelError{Flow: flowName, Err: err}
	}

	if d.EnforcePolicy {
		result.SuggestedAction = SuggestAction(req.AutomationLevel, result.AreDuplicates, result.ConfidenceScore)
	}

	return result, nil
}
