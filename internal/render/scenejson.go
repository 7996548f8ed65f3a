package render

import (
	"encoding/json"
	"os"
)

// SceneJSON renders the scene to a JSON file, for frontends or tooling that
// draw it themselves.
type SceneJSON struct{}

var _ FileRenderer = SceneJSON{}

func (s SceneJSON) RenderToFile(scene *Scene, filename string) error {
	filename = filename + ".json"

	jsonData, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(jsonData)
	return err
}
