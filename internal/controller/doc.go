package controller

// Package controller holds the front-end logic shared by the desktop window and
// the command line: one parametrised conversion handler instantiated per
// category, the tab set, and the startup health check. It reaches the screen
// only through the Port interface, so it runs the same against Fyne widgets, a
// terminal, or a test fake.
