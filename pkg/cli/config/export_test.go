package config

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewFileForTest creates a File config for testing purposes
func NewFileForTest(path string) *File {
	return &File{path: path}
}
