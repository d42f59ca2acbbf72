package config

import "finch/internal/support"

const (
	defaultDBPath   = "data/credit_system.db"
	defaultModelDir = "models"
)

var InProductionMode bool

func SetProductionMode(productionMode bool) {
	InProductionMode = productionMode
}

// DBPath is where the embedded database file lives when the sqlite driver
// is selected.
func DBPath() string {
	return support.GetEnv("DB_PATH", defaultDBPath)
}

// ModelDir holds the exported model artifacts.
func ModelDir() string {
	return support.GetEnv("MODEL_DIR", defaultModelDir)
}
