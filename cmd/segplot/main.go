package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"segplot/internal/cli"
	apperrors "segplot/internal/errors"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		log.Error(apperrors.UserMessage(err), "code", apperrors.GetCode(err))
		os.Exit(1)
	}
}
