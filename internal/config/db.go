package config

// Supported gorm engines.
const (
	GormEngineSQLite   = "sqlite"
	GormEngineMySQL    = "mysql"
	GormEnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	Path       string // file path for the sqlite engine, ":memory:" for in-memory
	GormEngine string
	SkipSeed   bool // do not seed initial data on startup
}
