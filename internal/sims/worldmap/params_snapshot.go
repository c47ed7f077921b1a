package worldmap

import (
	"strconv"
	"strings"

	"worldgen/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("iterations", "Iterations", w.cfg.Iterations),
			},
		},
		{
			Name: "Tiles",
			Params: []core.Parameter{
				intParam("category_count", "Categories", w.cfg.Categories.Len()),
				{
					Key:   "categories",
					Label: "Names",
					Type:  core.ParamTypeString,
					Value: strings.Join(w.cfg.Categories.Names(), ","),
				},
			},
		},
	}
	if w.run != nil {
		groups[0].Summary = "relaxing " + strconv.Itoa(w.run.Passes()) + "/" + strconv.Itoa(w.run.Total())
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

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
