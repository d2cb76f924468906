package duel

import (
	"strconv"

	"duel-ca/pkg/core"
)

// Parameters returns the scoreboard shown by hosts.
func (e *Engine) Parameters() core.ParameterSnapshot {
	status := "running"
	if e.state.Ended {
		status = "over"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Red",
			Tone: ColorA.String(),
			Params: []core.Parameter{
				intParam("red_generated", "Generated", e.generated.A),
				intParam("red_left", "Left", e.budget.Remaining(ColorA)),
			},
		},
		{
			Name: "Blue",
			Tone: ColorB.String(),
			Params: []core.Parameter{
				intParam("blue_generated", "Generated", e.generated.B),
				intParam("blue_left", "Left", e.budget.Remaining(ColorB)),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				intParam("generation", "Generation", e.generation),
				intParam("limit", "Limit", e.cfg.GenerationLimit),
				textParam("status", "Status", status),
				textParam("winner", "Winner", e.state.Winner.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
