// Package config carga la configuración del planificador desde variables
// de entorno (y un .env opcional), con valores por defecto sensatos:
// defaults explícitos, luego lectura de archivo opcional, luego override
// por entorno.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// GAConfig son los hiperparámetros del algoritmo genético. El
// elitismo conserva siempre al mejor individuo visto en todas las
// generaciones previas (ver internal/optimizer.Optimize), por lo que no es
// configurable aquí.
type GAConfig struct {
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	Seed           int64
}

// PlannerConfig son los parámetros de terminación del planificador de
// trayectoria. Los topes de cursos por estado del estudiante no se
// configuran: son reglamento académico, no tunables.
type PlannerConfig struct {
	MaxTerms     int
	IterationCap int
}

// Config agrupa toda la configuración ambiente del planificador.
type Config struct {
	LogLevel  string
	LogFormat string

	GA      GAConfig
	Planner PlannerConfig
}

// Load lee la configuración desde el entorno (con prefijo PLANNER_),
// cayendo en los valores por defecto cuando una variable no está
// presente. No falla si no existe un archivo .env: eso es opcional.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		GA: GAConfig{
			PopulationSize: v.GetInt("GA_POPULATION_SIZE"),
			Generations:    v.GetInt("GA_GENERATIONS"),
			CrossoverRate:  v.GetFloat64("GA_CROSSOVER_RATE"),
			MutationRate:   v.GetFloat64("GA_MUTATION_RATE"),
			Seed:           v.GetInt64("GA_SEED"),
		},
		Planner: PlannerConfig{
			MaxTerms:     v.GetInt("MAX_TERMS"),
			IterationCap: v.GetInt("ITERATION_CAP"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("GA_POPULATION_SIZE", 100)
	v.SetDefault("GA_GENERATIONS", 30)
	v.SetDefault("GA_CROSSOVER_RATE", 0.8)
	v.SetDefault("GA_MUTATION_RATE", 0.2)
	v.SetDefault("GA_SEED", 0)

	v.SetDefault("MAX_TERMS", 15)
	v.SetDefault("ITERATION_CAP", 20)
}
