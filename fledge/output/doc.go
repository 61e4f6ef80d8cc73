// Package output provides styled terminal output for CLI tools.
//
// # Usage
//
//	import "github.com/simonhull/hatchling/fledge/output"
//
//	output.Success("Project setup completed successfully!")
//	output.Info("Next Steps:")
//	output.Step("cd shop/frontend")
//	output.Warn("npm install -D tailwindcss postcss autoprefixer")
//	output.Error("Something went wrong")
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Redirecting
//
// Tests and embedding tools can capture output with SetWriter:
//
//	var buf bytes.Buffer
//	output.SetWriter(&buf)
//	defer output.SetWriter(nil)
//
// # Styling
//
//   - Success: 🐣 green bold
//   - Error: ❌ red bold
//   - Warn: ⚠️ yellow
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
