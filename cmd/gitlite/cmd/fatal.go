package cmd

import (
	"errors"
	"fmt"
	"os"

	cfgstatus "github.com/oneconcern/gitlite/pkg/config/status"
	corestatus "github.com/oneconcern/gitlite/pkg/core/status"
	modelstatus "github.com/oneconcern/gitlite/pkg/model/status"
	repostatus "github.com/oneconcern/gitlite/pkg/repo/status"
)

// Exit statuses: each error kind maps to its own code so scripts can
// tell expected outcomes (no repository here, already initialized)
// from defects.
const (
	exitIOFailure         = 1
	exitNotARepository    = 2
	exitNoRepositoryFound = 3
	exitAlreadyExists     = 4
	exitNotADirectory     = 5
	exitBadConfig         = 6
	exitBadFormatVersion  = 7
	exitBadObject         = 8
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, repostatus.ErrNotARepository):
		return exitNotARepository
	case errors.Is(err, repostatus.ErrNoRepositoryFound):
		return exitNoRepositoryFound
	case errors.Is(err, repostatus.ErrAlreadyExists):
		return exitAlreadyExists
	case errors.Is(err, repostatus.ErrNotADirectory):
		return exitNotADirectory
	case errors.Is(err, cfgstatus.ErrConfigMissing),
		errors.Is(err, cfgstatus.ErrConfigParse),
		errors.Is(err, cfgstatus.ErrMalformedConfig):
		return exitBadConfig
	case errors.Is(err, repostatus.ErrUnsupportedFormatVersion):
		return exitBadFormatVersion
	case errors.Is(err, modelstatus.ErrMalformedObject),
		errors.Is(err, corestatus.ErrCorruptedObject),
		errors.Is(err, corestatus.ErrObjectNotFound):
		return exitBadObject
	default:
		return exitIOFailure
	}
}

func wrapFatalln(msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintln(os.Stderr, msg)
		osExit(exitIOFailure)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	osExit(exitCode(err))
}
