package settings

import "os"

const envInstance = "TEMPLATE_EDITOR_INSTANCE"

const defaultInstanceDir = "instance"

// InstanceDir resolves the directory holding user state. It does not
// have to exist yet; Save creates it on first write.
func InstanceDir() string {
	if dir := os.Getenv(envInstance); dir != "" {
		return dir
	}
	return defaultInstanceDir
}
