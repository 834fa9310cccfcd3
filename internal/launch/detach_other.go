//go:build !unix && !windows

package launch

import "os/exec"

func detach(cmd *exec.Cmd) {}
