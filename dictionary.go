package smoothtext

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// The English dictionary ships with the library as hyphenated word forms,
// one per line ("a-mer-i-can"); the lookup key is the parts joined. Users
// can extend or override entries by dropping files of the same format into
// the XDG data directory (see Prepare).

//go:embed data/english.txt data/english_gb.txt
var dictionaryFiles embed.FS

const userDataDirName = "smoothtext"

var dictionaryFileNames = map[Language]string{
	English:   "english.txt",
	EnglishGB: "english_gb.txt",
}

var (
	dictMu       sync.RWMutex
	dictLoaded   bool
	dictionaries map[Language]map[string][]string
)

// lookupSyllables returns the dictionary entry for a lower-cased key.
func lookupSyllables(language Language, key string) ([]string, bool) {
	ensureDictionaries()

	dictMu.RLock()
	defer dictMu.RUnlock()

	parts, ok := dictionaries[language][key]
	return parts, ok
}

// ensureDictionaries loads the embedded dictionaries exactly once; user
// extensions are merged on top when present.
func ensureDictionaries() {
	dictMu.Lock()
	defer dictMu.Unlock()

	if dictLoaded {
		return
	}

	dictionaries = make(map[Language]map[string][]string, len(dictionaryFileNames))
	for language, name := range dictionaryFileNames {
		entries := make(map[string][]string)

		content, err := dictionaryFiles.ReadFile("data/" + name)
		if err != nil {
			Logger.Error().Err(err).Str("file", name).Msg("failed to read embedded dictionary")
		} else {
			mergeDictionary(entries, string(content))
		}

		userPath := filepath.Join(xdg.DataHome, userDataDirName, name)
		if userContent, err := os.ReadFile(userPath); err == nil {
			before := len(entries)
			mergeDictionary(entries, string(userContent))
			Logger.Debug().Str("path", userPath).Int("entries", len(entries)-before).Msg("merged user dictionary")
		}

		dictionaries[language] = entries
	}

	dictLoaded = true
}

// mergeDictionary parses hyphenated entries into the map, later entries
// overriding earlier ones. Blank lines and "#" comments are skipped.
func mergeDictionary(entries map[string][]string, content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(strings.ToLower(line), "-")
		key := strings.Join(parts, "")
		if key == "" {
			continue
		}
		entries[key] = parts
	}
}
