package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fincast/portfolio-calculator/internal/calculation"
	"github.com/fincast/portfolio-calculator/internal/domain"
	"github.com/fincast/portfolio-calculator/pkg/money"
)

var (
	flagGoalMode       string
	flagMonthlyExpense string
	flagSafeRate       string
	flagCurrentAge     int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Compute a freedom or pension goal amount from flags",
	RunE:  runGoal,
}

func init() {
	goalCmd.Flags().StringVarP(&flagGoalMode, "mode", "m", "freedom", "Goal mode (freedom or pension)")
	goalCmd.Flags().StringVarP(&flagMonthlyExpense, "monthly-expense", "e", "", "Monthly expense amount")
	goalCmd.Flags().StringVarP(&flagSafeRate, "safe-rate", "r", "0.04", "Safe withdrawal / discount rate")
	goalCmd.Flags().IntVarP(&flagCurrentAge, "age", "a", 0, "Current age (pension mode)")
	goalCmd.MarkFlagRequired("monthly-expense")
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, args []string) error {
	expense, err := decimal.NewFromString(flagMonthlyExpense)
	if err != nil {
		return fmt.Errorf("parsing --monthly-expense: %w", err)
	}
	safeRate, err := decimal.NewFromString(flagSafeRate)
	if err != nil {
		return fmt.Errorf("parsing --safe-rate: %w", err)
	}

	goal, err := calculation.ComputeGoal(domain.GoalMode(flagGoalMode), &expense, safeRate, flagCurrentAge)
	if err != nil {
		return err
	}
	if goal == nil {
		fmt.Println("No goal requested.")
		return nil
	}

	fmt.Printf("Goal (%s): %s\n", goal.Mode, money.FromDecimal(goal.Amount).Round().Format())
	return nil
}
