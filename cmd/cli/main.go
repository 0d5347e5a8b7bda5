package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hr-assist-be/internal/bootstrap"
	"hr-assist-be/internal/config"
	"hr-assist-be/internal/dto"
	"hr-assist-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

func main() {
	role := flag.String("role", "employee", "role to ask as (employee, manager, hr_admin, hr_manager, executive)")
	employee := flag.String("employee", "CLI-USER", "employee code attached to the session")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	sessionId := uuid.NewString()

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	cyan.Println("=== HR Assist CLI ===")
	fmt.Printf("Session: %s (role: %s)\n", sessionId, *role)
	fmt.Println("Type a question and press Enter. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cyan.Print("\nYou> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		res, err := container.QueryService.ProcessQuery(context.Background(), &dto.QueryRequest{
			Query:      input,
			SessionId:  sessionId,
			EmployeeId: *employee,
			Role:       *role,
		})
		if err != nil {
			red.Printf("Error: %v\n", err)
			continue
		}

		green.Printf("\nAssistant> %s\n", res.Response)
		fmt.Printf("\n  category=%s confidence=%.3f time=%dms\n", res.Category, res.Confidence, res.ResponseTimeMs)
		if len(res.Sources) > 0 {
			fmt.Printf("  sources: %s\n", strings.Join(res.Sources, ", "))
		}
		if res.Escalated {
			yellow.Printf("  ⚠ escalated (%s)\n", res.EscalationType)
		}
	}
}
