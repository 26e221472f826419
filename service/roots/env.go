package roots

import "os"

const envRootName = "TEMPLATE_EDITOR_ROOT"

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
