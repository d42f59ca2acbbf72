package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finch/internal/scoring"
)

// Fixed artifact names inside the model directory. The training pipeline
// exports exactly these three files.
const (
	ClassifierFile   = "credit_scoring_model.json"
	LabelEncoderFile = "credit_score_encoder.json"
	CatEncodersFile  = "cat_encoders.json"
)

// LabelEncoder maps classifier labels (indices) onto category names.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// CatEncoders holds the categorical value→code maps the training pipeline
// used. The intake form already submits integer codes, so these are loaded
// and validated but not consulted per request.
type CatEncoders map[string]map[string]int

// Artifacts is everything the scoring path needs from the training export,
// loaded once at startup and read-only afterwards.
type Artifacts struct {
	Classifier   *LogisticClassifier
	LabelEncoder LabelEncoder
	CatEncoders  CatEncoders
}

// LoadArtifacts reads and validates the three model artifacts from dir.
// Any missing, undecodable or shape-incompatible artifact is an error; the
// caller treats that as fatal, there is no partial-availability mode.
func LoadArtifacts(dir string) (*Artifacts, error) {
	var classifier LogisticClassifier
	if err := readArtifact(filepath.Join(dir, ClassifierFile), &classifier); err != nil {
		return nil, err
	}

	var encoder LabelEncoder
	if err := readArtifact(filepath.Join(dir, LabelEncoderFile), &encoder); err != nil {
		return nil, err
	}

	var catEncoders CatEncoders
	if err := readArtifact(filepath.Join(dir, CatEncodersFile), &catEncoders); err != nil {
		return nil, err
	}

	if err := validate(&classifier, encoder, catEncoders); err != nil {
		return nil, err
	}

	return &Artifacts{
		Classifier:   &classifier,
		LabelEncoder: encoder,
		CatEncoders:  catEncoders,
	}, nil
}

func readArtifact(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("model artifact not found: %s", path)
		}
		return fmt.Errorf("read model artifact %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	return nil
}

// validate checks the artifact shapes against the feature schema. The
// feature columns are compared by name and position: the classifier is
// opaque, so a silent schema drift would score wrong instead of erroring.
func validate(classifier *LogisticClassifier, encoder LabelEncoder, catEncoders CatEncoders) error {
	want := scoring.FeatureColumns
	if len(classifier.FeatureNames) != len(want) {
		return fmt.Errorf("classifier trained on %d features, service builds %d", len(classifier.FeatureNames), len(want))
	}
	for i, name := range classifier.FeatureNames {
		if name != want[i] {
			return fmt.Errorf("feature column %d is %q in the artifact but %q in the service", i, name, want[i])
		}
	}

	classes := len(classifier.Coefficients)
	if classes == 0 {
		return fmt.Errorf("classifier has no coefficient rows")
	}
	for class, row := range classifier.Coefficients {
		if len(row) != len(want) {
			return fmt.Errorf("coefficient row for class %d has %d weights, want %d", class, len(row), len(want))
		}
	}
	if len(classifier.Intercepts) != classes {
		return fmt.Errorf("classifier has %d intercepts for %d classes", len(classifier.Intercepts), classes)
	}

	if len(encoder.Classes) != classes {
		return fmt.Errorf("label encoder has %d classes, classifier has %d", len(encoder.Classes), classes)
	}

	if len(catEncoders) == 0 {
		return fmt.Errorf("categorical encoders artifact is empty")
	}

	return nil
}
