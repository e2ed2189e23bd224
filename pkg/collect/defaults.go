// File: pkg/collect/defaults.go
package collect

// defaultFolders are directory names that are never descended into when no
// ignore-config file is present: version control, dependency and build
// output, virtual environments, IDE metadata.
var defaultFolders = []string{
	".env",
	".git",
	".hg",
	".idea",
	".svn",
	".venv",
	".vscode",
	"__pycache__",
	"bin",
	"build",
	"coverage",
	"dist",
	"env",
	"logs",
	"node_modules",
	"obj",
	"out",
	"public",
	"static",
	"target",
	"temp",
	"tmp",
	"vendor",
	"venv",
}

// defaultPatterns are filename globs skipped when no ignore-config file is
// present: media, archives, config/data/lock files, compiled artifacts,
// databases, logs, editor droppings.
var defaultPatterns = []string{
	// Generated config
	"*.config.js", "*.config.ts", "*.d.ts",
	// Media
	"*.jpg", "*.jpeg", "*.png", "*.gif", "*.bmp", "*.svg", "*.tif", "*.tiff",
	"*.mp4", "*.mkv", "*.avi", "*.mov", "*.wmv", "*.flv",
	"*.mp3", "*.wav", "*.ogg", "*.flac", "*.aac",
	"*.webp", "*.ico", "*.otf",
	// Archives
	"*.zip", "*.tar", "*.gz", "*.bz2", "*.rar", "*.7z", "*.whl",
	// Config / data / lock files
	"*.json", "*.yaml", "*.yml", "*.toml", "*.ini", "*.cfg", "*.conf",
	"*.xml", "*.csv", "*.tsv",
	"*.lock", "yarn.lock", "package-lock.json", "composer.lock", "poetry.lock",
	".gitignore", ".gitattributes", ".gitmodules",
	".env", ".env.example", ".env.*",
	".prettierrc", ".prettierignore",
	// Compiled / object / binary
	"*.pyc", "*.pyo", "*.class", "*.jar",
	"*.o", "*.so", "*.dll", "*.a", "*.lib",
	"*.exe", "*.app", "*.dmg", "*.pkg",
	"*.pdf", "*.doc", "*.docx", "*.xls", "*.xlsx", "*.ppt", "*.pptx",
	"*.odt", "*.ods", "*.odp", "*.wasm",
	// Databases
	"*.db", "*.sqlite", "*.sqlite3", "*.sql",
	// Logs, temp, editor backups
	"*.log", "*.tmp", "*.temp",
	"*.bak", "*.swp", "*.swo", "*~",
	// Documentation and notebooks
	"*.md", "*.markdown", "*.ipynb",
}
