package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/txvalidator/infrastructure/logger"
	"github.com/kaspanet/txvalidator/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, nil)

	subCmd, cfg, subCmdConfig := parseCommandLine()

	var err error
	switch subCmd {
	case genKeyPairSubCmd:
		err = genKeyPair(subCmdConfig.(*genKeyPairConfig))
	case addUTXOSubCmd:
		err = addUTXO(cfg, subCmdConfig.(*addUTXOConfig))
	case signSubCmd:
		err = sign(subCmdConfig.(*signConfig))
	case validateSubCmd:
		err = validate(cfg, subCmdConfig.(*validateConfig))
	case commitmentSubCmd:
		err = commitment(cfg)
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	logger.BackendLog.Close()
	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
