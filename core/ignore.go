package core

import (
	"path/filepath"
	"strings"
	"sync"
)

// ignoreCache avoids re-reading and re-parsing .svnignore on every call,
// the way the teacher's IsIgnored caches parsed patterns per repo root.
var (
	ignoreCache      = make(map[string][]string)
	ignoreCacheMutex sync.RWMutex
)

// LoadIgnoreRules reads and caches the rule lines from <root>/.svnignore.
// A missing file yields an empty rule set, not an error.
func LoadIgnoreRules(root string) []string {
	ignoreCacheMutex.RLock()
	rules, ok := ignoreCache[root]
	ignoreCacheMutex.RUnlock()
	if ok {
		return rules
	}

	rules = []string{}
	path := filepath.Join(root, IgnoreFileName)
	if FileExists(path) {
		content, err := ReadFileContent(path)
		if err == nil {
			for _, line := range strings.Split(string(content), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				rules = append(rules, line)
			}
		}
	}

	ignoreCacheMutex.Lock()
	ignoreCache[root] = rules
	ignoreCacheMutex.Unlock()
	return rules
}

// InvalidateIgnoreCache forgets cached rules for root, used by tests that
// rewrite .svnignore mid-run.
func InvalidateIgnoreCache(root string) {
	ignoreCacheMutex.Lock()
	delete(ignoreCache, root)
	ignoreCacheMutex.Unlock()
}

// IsIgnored implements §4.E's three rule forms against a repo-relative,
// forward-slash path, plus the always-ignore rule for RepoDirName.
func IsIgnored(relPath string, rules []string) bool {
	relPath = ToSlash(relPath)
	if relPath == RepoDirName || strings.HasPrefix(relPath, RepoDirName+"/") {
		return true
	}

	for _, rule := range rules {
		switch {
		case strings.HasSuffix(rule, "/"):
			prefix := strings.TrimSuffix(rule, "/")
			if relPath == prefix || strings.HasPrefix(relPath, prefix+"/") {
				return true
			}
		case strings.HasPrefix(rule, "*"):
			suffix := strings.TrimPrefix(rule, "*")
			if strings.HasSuffix(relPath, suffix) {
				return true
			}
		default:
			if relPath == rule {
				return true
			}
		}
	}
	return false
}
