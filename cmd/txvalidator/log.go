package main

import (
	"github.com/kaspanet/txvalidator/infrastructure/logger"
	"github.com/kaspanet/txvalidator/util/panics"
)

var (
	log   = logger.RegisterSubSystem("TXVD")
	spawn = panics.GoroutineWrapperFunc(log)
)
