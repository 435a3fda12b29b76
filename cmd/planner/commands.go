package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trayectoria-UDP/internal/catalog"
	"trayectoria-UDP/internal/report"
)

func newEligibleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eligible",
		Short: "Lista los cursos que el estudiante puede inscribir ahora",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, _, err := buildOptimizer(flags)
			if err != nil {
				return err
			}
			student := selectedStudent(flags)
			eligible := o.EligibleCourses(student)
			fmt.Fprint(cmd.OutOrStdout(), report.RenderEligible(student, eligible, catalog.Courses()))
			return nil
		},
	}
}

func newOptimizeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Optimiza la carga del cuatrimestre actual con el algoritmo genético",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, cfg, err := buildOptimizer(flags)
			if err != nil {
				return err
			}
			student := selectedStudent(flags)
			groups, warning := o.OptimizeTerm(student, gaConfig(cfg))

			sched := report.TermSchedule{GroupIDs: groups, Groups: catalog.Groups(), Courses: catalog.Courses()}
			fmt.Fprint(cmd.OutOrStdout(), report.RenderTermSchedule(sched, warning))
			return nil
		},
	}
}

func newScheduleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Optimiza el cuatrimestre y dibuja la grilla semanal resultante",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, cfg, err := buildOptimizer(flags)
			if err != nil {
				return err
			}
			student := selectedStudent(flags)
			groups, warning := o.OptimizeTerm(student, gaConfig(cfg))

			sched := report.TermSchedule{GroupIDs: groups, Groups: catalog.Groups(), Courses: catalog.Courses()}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.RenderTermSchedule(sched, warning))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.RenderWeeklyGrid(o.MaterializeWeekly(groups)))
			return nil
		},
	}
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Proyecta la trayectoria completa del estudiante hasta el egreso",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, _, err := buildOptimizer(flags)
			if err != nil {
				return err
			}
			plan := o.PlanTrajectory(selectedStudent(flags))
			fmt.Fprint(cmd.OutOrStdout(), report.RenderTrajectory(plan))
			return nil
		},
	}
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Corre el flujo completo: elegibilidad, optimización, grilla y trayectoria",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, cfg, err := buildOptimizer(flags)
			if err != nil {
				return err
			}
			student := selectedStudent(flags)
			out := cmd.OutOrStdout()

			eligible := o.EligibleCourses(student)
			fmt.Fprint(out, report.RenderEligible(student, eligible, catalog.Courses()))
			fmt.Fprintln(out)

			groups, warning := o.OptimizeTerm(student, gaConfig(cfg))
			sched := report.TermSchedule{GroupIDs: groups, Groups: catalog.Groups(), Courses: catalog.Courses()}
			fmt.Fprint(out, report.RenderTermSchedule(sched, warning))
			fmt.Fprintln(out)

			fmt.Fprint(out, report.RenderWeeklyGrid(o.MaterializeWeekly(groups)))
			fmt.Fprintln(out)

			fmt.Fprint(out, report.RenderTrajectory(o.PlanTrajectory(student)))
			return nil
		},
	}
}
