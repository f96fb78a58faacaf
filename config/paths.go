package config

// Paths maps an environment name to a level key to the file receiving
// records of that level, e.g. paths["test"]["warning"] = "logs/test/warning.log".
type Paths map[string]map[string]string

// Lookup returns the path configured for env and level key.
func (p Paths) Lookup(env, levelKey string) (path string, ok bool) {
	byLevel, ok := p[env]
	if !ok {
		return "", false
	}
	path, ok = byLevel[levelKey]
	return path, ok && path != ""
}

// LoadPaths reads the paths configuration. The file is re-read on every call.
func LoadPaths(path string) (Paths, error) {
	var paths Paths
	if err := load(path, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}
