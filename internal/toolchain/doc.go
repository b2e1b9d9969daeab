// Package toolchain declares the external developer tools the mogpack bundle
// expects in a project (nitpick, ruff, mypy, pytest) and checks that they are
// installed and recent enough. It only reports; installing or running the
// tools is left to the user's environment.
package toolchain
