package web

import (
	"github.com/peterkuimelis/lodx/internal/game"
	"gopkg.in/yaml.v3"
)

func parseScenarioYAML(data []byte) (game.ScenarioFile, error) {
	var sf game.ScenarioFile
	err := yaml.Unmarshal(data, &sf)
	return sf, err
}
