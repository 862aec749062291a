package main

import (
	"github.com/logrusorgru/aurora/v4"
)

func (a *app) aurora() *aurora.Aurora {
	return aurora.New(aurora.WithColors(a.cfg.Color))
}

func (a *app) colorizeBool(b bool) string {
	au := a.aurora()
	if b {
		return au.Green("True").String()
	}
	return au.Yellow("False").String()
}

func (a *app) colorizeError(message string) string {
	return a.aurora().Red(message).Bold().String()
}
