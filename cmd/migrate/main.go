package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/QuangTung97/crowd-escrow/config"
	"github.com/QuangTung97/crowd-escrow/pkg/migration"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	cmd := migration.MigrateCommand(func() *sqlx.DB {
		conf := config.Load()
		return conf.MySQL.MustConnect()
	})
	err := cmd.Execute()
	if err != nil {
		fmt.Println("[ERROR]", err)
	}
}
