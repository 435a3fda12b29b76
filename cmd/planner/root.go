package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trayectoria-UDP/internal/catalog"
	"trayectoria-UDP/internal/config"
	"trayectoria-UDP/internal/domain"
	"trayectoria-UDP/pkg/planner"
)

// rootFlags son los flags compartidos por todos los subcomandos.
type rootFlags struct {
	irregular bool
	seed      int64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Planificador de trayectoria académica",
		Long: "Planificador de trayectoria académica: resuelve elegibilidad,\n" +
			"optimiza la carga de un cuatrimestre con un algoritmo genético y\n" +
			"proyecta la trayectoria completa hasta el egreso sobre la malla de\n" +
			"muestra incluida.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.irregular, "irregular", false, "usar el estudiante irregular de muestra en vez del regular")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "semilla del generador aleatorio (0 = PLANNER_GA_SEED, o derivada del reloj si también es 0)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "loguear el progreso interno del planificador")

	root.AddCommand(
		newEligibleCmd(flags),
		newOptimizeCmd(flags),
		newScheduleCmd(flags),
		newPlanCmd(flags),
		newDemoCmd(flags),
	)

	return root
}

// buildOptimizer arma el Optimizer sobre la malla de muestra, con la
// configuración del entorno y los flags de la línea de comandos.
func buildOptimizer(flags *rootFlags) (*planner.Optimizer, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargando configuración: %w", err)
	}

	log, err := buildLogger(cfg, flags.verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("construyendo logger: %w", err)
	}

	seed := flags.seed
	if seed == 0 {
		seed = cfg.GA.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	courses := catalog.Courses()
	groups := catalog.Groups()

	courseList := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		courseList = append(courseList, c)
	}
	groupList := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		groupList = append(groupList, g)
	}

	o, err := planner.New(courseList, groupList, catalog.PrereqGraph(), catalog.ProjectDepGraph(),
		planner.WithSeed(seed),
		planner.WithLogger(log.Sugar()),
		planner.WithPlannerLimits(cfg.Planner.MaxTerms, cfg.Planner.IterationCap))
	if err != nil {
		return nil, nil, err
	}
	return o, cfg, nil
}

func buildLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	} else if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.WarnLevel
	}

	zcfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}

func selectedStudent(flags *rootFlags) domain.Student {
	if flags.irregular {
		return catalog.SampleIrregularStudent()
	}
	return catalog.SampleStudent()
}

func gaConfig(cfg *config.Config) planner.OptimizeConfig {
	return planner.OptimizeConfig{
		PopulationSize: cfg.GA.PopulationSize,
		Generations:    cfg.GA.Generations,
		CrossoverRate:  cfg.GA.CrossoverRate,
		MutationRate:   cfg.GA.MutationRate,
	}
}
