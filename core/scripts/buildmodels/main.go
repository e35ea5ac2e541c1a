package main

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Regenerates model structs from a live schema. Used to cross-check the
// hand-maintained structs in core/models after a migration.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:      "../../models/generated",
		ModelPkgPath: "generated", // avoid helper functions
		Mode:         gen.WithoutContext | gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.WithDataTypeMap(map[string]func(gorm.ColumnType) (dataType string){
		"date": func(gorm.ColumnType) string {
			return "string"
		},
		"decimal": func(gorm.ColumnType) string {
			return "float64"
		},
	})

	gormdb, _ := gorm.Open(mysql.Open(os.Getenv("TIMESHEET_DSN")))
	g.UseDB(gormdb)

	g.GenerateAllTable()
	g.ApplyBasic()

	g.Execute()
}
