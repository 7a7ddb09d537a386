package ldb

import "github.com/kaspanet/txvalidator/infrastructure/logger"

var log = logger.RegisterSubSystem("LVDB")
