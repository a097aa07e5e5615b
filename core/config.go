package core

import (
	"os"
	"path/filepath"
	"strings"
)

const GlobalConfigFileName = ".svnconfig"

// ReadConfigFile parses a simple "key = value" line-oriented config file.
// A missing file yields an empty map, not an error.
func ReadConfigFile(path string) (map[string]string, error) {
	values := make(map[string]string)
	if !FileExists(path) {
		return values, nil
	}
	content, err := ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return values, nil
}

// WriteConfigFile serializes values back as "key = value" lines.
func WriteConfigFile(path string, values map[string]string) error {
	var sb strings.Builder
	for k, v := range values {
		sb.WriteString(k)
		sb.WriteString(" = ")
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	return WriteFileAtomic(path, []byte(sb.String()), 0644)
}

func localConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RepoDirName, "config")
}

func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return GlobalConfigFileName
	}
	return filepath.Join(home, GlobalConfigFileName)
}

// GetConfigValue looks up key in the local repo config first, falling back
// to the user's global config.
func GetConfigValue(repoRoot, key string) (string, error) {
	local, err := ReadConfigFile(localConfigPath(repoRoot))
	if err != nil {
		return "", err
	}
	if v, ok := local[key]; ok {
		return v, nil
	}
	global, err := ReadConfigFile(globalConfigPath())
	if err != nil {
		return "", err
	}
	return global[key], nil
}

// SetConfigValue writes key=value into the local repo config.
func SetConfigValue(repoRoot, key, value string) error {
	values, err := ReadConfigFile(localConfigPath(repoRoot))
	if err != nil {
		return err
	}
	values[key] = value
	return WriteConfigFile(localConfigPath(repoRoot), values)
}

// SetGlobalConfigValue writes key=value into the user's global config.
func SetGlobalConfigValue(key, value string) error {
	values, err := ReadConfigFile(globalConfigPath())
	if err != nil {
		return err
	}
	values[key] = value
	return WriteConfigFile(globalConfigPath(), values)
}
