package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/txvalidator/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	genKeyPairSubCmd = "genkeypair"
	addUTXOSubCmd    = "addutxo"
	signSubCmd       = "sign"
	validateSubCmd   = "validate"
	commitmentSubCmd = "commitment"
)

type configFlags struct {
	config.Flags
}

type genKeyPairConfig struct {
	Import bool `long:"import" short:"i" description:"Import an existing mnemonic instead of creating a new one"`
}

type addUTXOConfig struct {
	TransactionID string `long:"txid" description:"The ID of the transaction that created the output" required:"true"`
	Index         uint32 `long:"index" description:"The index of the output in its transaction"`
	Amount        int64  `long:"amount" description:"The amount of the output" required:"true"`
	Recipient     string `long:"recipient" description:"The identity that may spend the output (encoded in hex)" required:"true"`
}

type signConfig struct {
	Transaction string   `long:"transaction" short:"t" description:"Path to the transaction to sign (JSON)" required:"true"`
	PrivateKey  []string `long:"private-key" short:"k" description:"A private key of an input owner (encoded in hex). May be repeated" required:"true"`
	Out         string   `long:"out" short:"o" description:"Where to write the signed transaction. Defaults to stdout"`
}

type validateConfig struct {
	Transactions []string `long:"transaction" short:"t" description:"Path to a transaction to validate (JSON). May be repeated" required:"true"`
	Apply        bool     `long:"apply" description:"Apply every valid transaction to the UTXO pool, in the order given"`
}

type commitmentConfig struct{}

func parseCommandLine() (subCommand string, cfg *configFlags, subCommandConfig interface{}) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	genKeyPairConf := &genKeyPairConfig{}
	parser.AddCommand(genKeyPairSubCmd, "Generates a key pair",
		"Generates a key pair out of a new or imported bip39 mnemonic and prints its private key and identity",
		genKeyPairConf)

	addUTXOConf := &addUTXOConfig{}
	parser.AddCommand(addUTXOSubCmd, "Adds an unspent output to the UTXO pool",
		"Adds an unspent output to the UTXO pool", addUTXOConf)

	signConf := &signConfig{}
	parser.AddCommand(signSubCmd, "Signs the inputs of a transaction",
		"Signs every input of the transaction that is owned by one of the given private keys", signConf)

	validateConf := &validateConfig{}
	parser.AddCommand(validateSubCmd, "Validates transactions against the UTXO pool",
		"Validates transactions against a snapshot of the UTXO pool and prints every rule violation",
		validateConf)

	commitmentConf := &commitmentConfig{}
	parser.AddCommand(commitmentSubCmd, "Prints the UTXO pool commitment",
		"Prints the MuHash commitment of the UTXO pool and the number of unspent outputs it covers",
		commitmentConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = cfg.ResolveFlags()
	if err != nil {
		printErrorAndExit(err)
	}

	switch parser.Command.Active.Name {
	case genKeyPairSubCmd:
		subCommandConfig = genKeyPairConf
	case addUTXOSubCmd:
		subCommandConfig = addUTXOConf
	case signSubCmd:
		subCommandConfig = signConf
	case validateSubCmd:
		subCommandConfig = validateConf
	case commitmentSubCmd:
		subCommandConfig = commitmentConf
	}

	return parser.Command.Active.Name, cfg, subCommandConfig
}
