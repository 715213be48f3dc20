package scenario

import (
	"os"

	"gopkg.in/yaml.v3"
)

// WriteScene writes a scene to a YAML file.
func WriteScene(scene *Scene, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScene reads a scene from a YAML file.
func ReadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}

	return &scene, nil
}
