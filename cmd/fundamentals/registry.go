package main

import (
	"github.com/marcodamonte/fundamentals/internal/basics"
	"github.com/marcodamonte/fundamentals/internal/enums"
	"github.com/marcodamonte/fundamentals/internal/ownership"
	"github.com/marcodamonte/fundamentals/internal/structs"
	"github.com/marcodamonte/fundamentals/internal/tour"
)

// allChapters returns every chapter in reading order. Later chapters assume
// the earlier ones.
func allChapters() []tour.Chapter {
	return []tour.Chapter{
		{Name: "variables", Description: "Bindings, constants and shadowing", Run: basics.Variables},
		{Name: "datatypes", Description: "Integers, floats, decimals, runes, arrays", Run: basics.DataTypes},
		{Name: "functions", Description: "Parameters, results, statements vs expressions", Run: basics.Functions},
		{Name: "controlflow", Description: "if, for, labels and switch", Run: basics.ControlFlow},
		{Name: "ownership", Description: "Copies, pointers, defer and shared slices", Run: ownership.Walkthrough},
		{Name: "structs", Description: "Struct types, debug printing and methods", Run: structs.Walkthrough},
		{Name: "enums", Description: "iota, sealed interfaces, Option and switch", Run: enums.Walkthrough},
	}
}

// selectChapters resolves names in the order given. No names means all.
func selectChapters(names []string) ([]tour.Chapter, error) {
	all := allChapters()
	if len(names) == 0 {
		return all, nil
	}
	selected := make([]tour.Chapter, 0, len(names))
	for _, name := range names {
		c, err := tour.Lookup(all, name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, c)
	}
	return selected, nil
}
