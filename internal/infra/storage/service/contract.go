package service

import (
	"github.com/m04kA/parlourease/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
