// Package commands defines the giftwrap CLI.
//
// Commands
//
//   - quote      Price a single gift
//   - compare    Price a gift against other paper and extras
//   - order      Import a batch of quotes and export the order
//   - pattern    Count, draw or export a paper pattern
//   - template   List, save and delete quote templates
//   - backup     Write or restore config and templates
//   - shell      Edit an order interactively
//
// # Configuration
//
// The root command loads the config file (JSON, YAML or TOML, default
// ~/.giftwrap/config.json) with GIFTWRAP_* environment overrides, applies
// its price list and installs a text logger before any subcommand runs.
package commands
