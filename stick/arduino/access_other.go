//go:build !unix

package arduino

func checkAccess(name string) error {
	return nil
}
