// Package config holds the per-invocation options for the setup tool: the
// run mode (normal vs. dry-run) and the paths of every file the tool reads,
// mutates, or creates. Steps receive an Options value explicitly instead of
// consulting globals, which keeps them independently testable.
package config

// Options is the process-wide configuration for a single invocation.
// It is built once in main and never modified afterwards.
type Options struct {
	// DryRun reports every mutating action instead of executing it.
	DryRun bool

	// LogFile is the append-only execution log.
	LogFile string

	// BackupDir receives timestamped copies of config files before mutation.
	BackupDir string

	// Files mutated in place.
	HostsFile     string
	SSHDConfig    string
	LocaleGenFile string
	LocaleDefault string

	// LocaleSupportedFile is the read-only locale enumeration shipped with
	// the locales package.
	LocaleSupportedFile string

	// Files created by installer steps.
	MOTDScript       string
	EndlesshConfig   string
	AutoUpgradesFile string
	DockerListFile   string
	DockerKeyring    string
}

// Defaults returns the standard Debian paths used in a real run.
func Defaults() Options {
	return Options{
		LogFile:             "/var/log/debian-setup.log",
		BackupDir:           "/var/backups/debian-setup",
		HostsFile:           "/etc/hosts",
		SSHDConfig:          "/etc/ssh/sshd_config",
		LocaleGenFile:       "/etc/locale.gen",
		LocaleDefault:       "/etc/default/locale",
		LocaleSupportedFile: "/usr/share/i18n/SUPPORTED",
		MOTDScript:          "/etc/profile.d/motd.sh",
		EndlesshConfig:      "/etc/endlessh/config",
		AutoUpgradesFile:    "/etc/apt/apt.conf.d/20auto-upgrades",
		DockerListFile:      "/etc/apt/sources.list.d/docker.list",
		DockerKeyring:       "/etc/apt/keyrings/docker.gpg",
	}
}
