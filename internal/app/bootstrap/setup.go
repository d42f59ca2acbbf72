package bootstrap

import (
	"fmt"

	"finch/internal/config"
	"finch/internal/database"
	"finch/internal/model"
	"finch/internal/scoring"

	"github.com/charmbracelet/log"
)

// Setup brings up everything the request path depends on: the store schema
// and the model artifacts, in that order. Any failure is returned to main
// and fatal — there is no partial-availability mode.
func Setup() (scoring.Classifier, error) {
	if _, err := database.SetupDB(); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	log.Info("Loading model artifacts", "dir", config.ModelDir())
	artifacts, err := model.LoadArtifacts(config.ModelDir())
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	log.Info("Model artifacts loaded",
		"model", artifacts.Classifier.ModelType,
		"classes", artifacts.LabelEncoder.Classes,
	)

	return artifacts.Classifier, nil
}
