package http

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/reducer"
)

// ActionRequest is the wire envelope for POST .../actions. Type selects
// the reducer action; Params carries its payload.
type ActionRequest struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params,omitempty"`
}

// Wire action type names.
const (
	ActionSetTrim               = "set-trim"
	ActionSetColor              = "set-color"
	ActionAddPackage            = "add-package"
	ActionRemovePackage         = "remove-package"
	ActionTogglePackage         = "toggle-package"
	ActionAddOption             = "add-option"
	ActionRemoveOption          = "remove-option"
	ActionToggleOption          = "toggle-option"
	ActionGoToStep              = "go-to-step"
	ActionNextStep              = "next-step"
	ActionPreviousStep          = "previous-step"
	ActionMarkStepComplete      = "mark-step-complete"
	ActionAddValidationError    = "add-validation-error"
	ActionClearValidationErrors = "clear-validation-errors"
	ActionSetNotes              = "set-notes"
	ActionReset                 = "reset"
	ActionBulkUpdate            = "bulk-update"
)

// decodeParams decodes the params map into out, honoring json tags so the
// wire names match the rest of the API.
func decodeParams(params map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(params)
}

// decodeAction maps a wire envelope onto a reducer action. Pricing and
// validation updates are deliberately not exposed: those attachments are
// computed server-side from the catalog after every mutation.
func decodeAction(req ActionRequest) (reducer.Action, error) {
	switch req.Type {
	case ActionSetTrim:
		var p struct {
			TrimID string `json:"trim_id"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.SetTrim{TrimID: p.TrimID}, nil

	case ActionSetColor:
		var p struct {
			ColorID string `json:"color_id"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.SetColor{ColorID: p.ColorID}, nil

	case ActionAddPackage, ActionRemovePackage, ActionTogglePackage:
		var p struct {
			PackageID string `json:"package_id"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		switch req.Type {
		case ActionAddPackage:
			return reducer.AddPackage{PackageID: p.PackageID}, nil
		case ActionRemovePackage:
			return reducer.RemovePackage{PackageID: p.PackageID}, nil
		}
		return reducer.TogglePackage{PackageID: p.PackageID}, nil

	case ActionAddOption, ActionRemoveOption, ActionToggleOption:
		var p struct {
			OptionID string `json:"option_id"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		switch req.Type {
		case ActionAddOption:
			return reducer.AddOption{OptionID: p.OptionID}, nil
		case ActionRemoveOption:
			return reducer.RemoveOption{OptionID: p.OptionID}, nil
		}
		return reducer.ToggleOption{OptionID: p.OptionID}, nil

	case ActionGoToStep:
		var p struct {
			Step domain.Step `json:"step"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.GoToStep{Step: p.Step}, nil

	case ActionNextStep:
		return reducer.NextStep{}, nil

	case ActionPreviousStep:
		return reducer.PreviousStep{}, nil

	case ActionMarkStepComplete:
		var p struct {
			Step domain.Step `json:"step"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.MarkStepComplete{Step: p.Step}, nil

	case ActionAddValidationError:
		var p struct {
			Issue domain.ValidationIssue `json:"issue"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.AddValidationError{Issue: p.Issue}, nil

	case ActionClearValidationErrors:
		return reducer.ClearValidationErrors{}, nil

	case ActionSetNotes:
		var p struct {
			Notes string `json:"notes"`
		}
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		return reducer.SetNotes{Notes: p.Notes}, nil

	case ActionReset:
		return reducer.Reset{}, nil

	case ActionBulkUpdate:
		var patch domain.StatePatch
		if err := decodeParams(req.Params, &patch); err != nil {
			return nil, err
		}
		return reducer.BulkUpdate{Patch: patch}, nil
	}

	return nil, fmt.Errorf("unknown action type %q", req.Type)
}
