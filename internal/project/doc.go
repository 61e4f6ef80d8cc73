// Package project holds the Configuration of a generation run: the target
// directory, the project name and the frontend variants, plus the prompt
// sequence that collects them.
package project
