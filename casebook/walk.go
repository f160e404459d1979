package casebook

import (
	"os"
	"path/filepath"
	"strings"
)

// walkAndProcessFiles walks a path (file or directory) and invokes onFile for each file.
// VCS, vendor and hidden directories are skipped, except when given as the root.
func walkAndProcessFiles(root string, skipHiddenRoot bool, onFile func(p string, info os.FileInfo)) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		onFile(root, info)
		return nil
	}

	return filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			onFile(p, info)
			return nil
		}

		if p == root && !skipHiddenRoot {
			return nil
		}

		name := info.Name()
		if name == "vendor" || name == ".git" || name == "node_modules" || strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}

		return nil
	})
}
