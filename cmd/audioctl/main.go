package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/stalexteam/audioctl/pkg/audioctl"
)

const usage = `usage: audioctl <command> [flags] [args]

commands:
  list [role]              list devices, default marked (role defaults to all)
  current <role>           show the current default device
  set <role> <name>        set the default device by exact name
  set <role> -u <substr>   set the default device by UID substring
  set <role> -i <id>       set the default device by numeric identifier
  next <role>              cycle to the next device
  mute <role>              mute the role's current device
  unmute <role>            unmute the role's current device
  togglemute <role>        toggle mute on the role's current device
  volume <role> [level]    set (1-100) or show the role's current device volume

roles: input, output, system, all

flags:
  -f, --format <mode>      output format: human, cli, json
  -u, --uid <substring>    match device by UID substring (set)
  -i, --id <identifier>    match device by numeric identifier (set)
      --no-sync            don't follow output switches with the sound-effects output
      --notify             show a desktop notification after switching
  -v, --verbose            debug logging
`

type app struct {
	logger      *zap.SugaredLogger
	config      *audioctl.CanonicalConfig
	notifier    audioctl.Notifier
	coordinator *audioctl.Coordinator
	catalog     *audioctl.Catalog
	cycler      *audioctl.Cycler
	muter       *audioctl.Muter
	volume      *audioctl.VolumeControl

	format audioctl.Format
}

func main() {
	flags := pflag.NewFlagSet("audioctl", pflag.ContinueOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	formatName := flags.StringP("format", "f", "", "output format: human, cli, json")
	uidQuery := flags.StringP("uid", "u", "", "match device by UID substring")
	idQuery := flags.StringP("id", "i", "", "match device by numeric identifier")
	noSync := flags.Bool("no-sync", false, "don't sync the sound-effects output")
	notify := flags.Bool("notify", false, "show a desktop notification after switching")
	verbose := flags.BoolP("verbose", "v", false, "debug logging")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		os.Exit(1)
	}

	logger, err := audioctl.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audioctl: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config := audioctl.NewConfig(logger)
	if err := config.Load(); err != nil {
		logger.Warnw("Proceeding with default configuration", "error", err)
	}

	accessor := audioctl.NewAccessor()
	catalog := audioctl.NewCatalog(logger, accessor)
	coordinator := audioctl.NewCoordinator(logger, accessor, catalog)
	coordinator.SyncSystemSounds = config.SyncSystemSounds && !*noSync

	a := &app{
		logger:      logger,
		config:      config,
		notifier:    audioctl.NewNoopNotifier(),
		coordinator: coordinator,
		catalog:     catalog,
		cycler:      audioctl.NewCycler(logger, coordinator, catalog),
		muter:       audioctl.NewMuter(logger, accessor, coordinator),
		volume:      audioctl.NewVolumeControl(logger, accessor),
		format:      config.OutputFormat,
	}

	if *formatName != "" {
		format, ok := audioctl.ParseFormat(*formatName)
		if !ok {
			fmt.Fprintf(os.Stderr, "audioctl: unknown format %q\n", *formatName)
			os.Exit(1)
		}
		a.format = format
	}

	if *notify || config.Notifications {
		a.notifier = audioctl.NewToastNotifier(logger)
	}

	if err := a.run(args[0], args[1:], *uidQuery, *idQuery); err != nil {
		fmt.Fprintf(os.Stderr, "audioctl: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) run(command string, args []string, uidQuery, idQuery string) error {
	switch command {
	case "list":
		return a.list(args)
	case "current":
		role, err := roleArg(args)
		if err != nil {
			return err
		}
		record, err := a.coordinator.GetCurrent(role)
		if err != nil {
			return err
		}
		fmt.Println(audioctl.FormatRecord(record, a.format))
		return nil
	case "set":
		return a.set(args, uidQuery, idQuery)
	case "next":
		role, err := roleArg(args)
		if err != nil {
			return err
		}
		record, err := a.cycler.CycleNext(role)
		if err != nil {
			return err
		}
		a.announceSwitch(role, record)
		fmt.Println(audioctl.FormatRecord(record, a.format))
		return nil
	case "mute", "unmute", "togglemute":
		return a.mute(command, args)
	case "volume":
		return a.volumeCmd(args)
	}

	return fmt.Errorf("unknown command %q", command)
}

func (a *app) list(args []string) error {
	role := audioctl.RoleAll
	if len(args) > 0 {
		parsed, err := audioctl.ParseRole(args[0])
		if err != nil {
			return err
		}
		role = parsed
	}

	records, err := a.coordinator.ListWithDefaultMarked(role)
	if err != nil {
		return err
	}

	if out := audioctl.FormatRecords(records, a.format); out != "" {
		fmt.Println(out)
	}

	return nil
}

func (a *app) set(args []string, uidQuery, idQuery string) error {
	if len(args) == 0 {
		return fmt.Errorf("set: missing role")
	}

	role, err := audioctl.ParseRole(args[0])
	if err != nil {
		return err
	}

	var record audioctl.DeviceRecord

	switch {
	case idQuery != "":
		id, err := audioctl.ParseDeviceID(idQuery)
		if err != nil {
			return err
		}
		record, err = a.coordinator.SetDefault(id, role)
		if err != nil {
			return err
		}
	case uidQuery != "":
		record, err = a.coordinator.SetDefaultByUID(uidQuery, role)
		if err != nil {
			return err
		}
	case len(args) > 1:
		record, err = a.coordinator.SetDefaultByName(args[1], role)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("set: missing device name (or use -u/-i)")
	}

	a.announceSwitch(role, record)
	fmt.Println(audioctl.FormatRecord(record, a.format))

	return nil
}

func (a *app) mute(command string, args []string) error {
	role, err := roleArg(args)
	if err != nil {
		return err
	}

	action := map[string]audioctl.MuteAction{
		"mute":       audioctl.ActionMute,
		"unmute":     audioctl.ActionUnmute,
		"togglemute": audioctl.ActionToggle,
	}[command]

	muted, err := a.muter.SetMute(action, role)
	if err != nil {
		return err
	}

	state := "unmuted"
	if muted {
		state = "muted"
	}
	fmt.Printf("%s %s\n", role, state)

	return nil
}

func (a *app) volumeCmd(args []string) error {
	role, err := roleArg(args)
	if err != nil {
		return err
	}
	if !funk.ContainsString([]string{"input", "output", "system"}, role.String()) {
		return fmt.Errorf("volume: role must be input, output or system")
	}

	device, err := a.coordinator.GetCurrent(role)
	if err != nil {
		return err
	}

	if len(args) < 2 {
		level, err := a.volume.GetVolume(device)
		if err != nil {
			return err
		}
		fmt.Println(level)
		return nil
	}

	level, err := audioctl.ParseVolumeLevel(args[1])
	if err != nil {
		return err
	}

	applied, err := a.volume.SetVolume(device, level)
	if err != nil {
		return err
	}
	fmt.Println(applied)

	return nil
}

func (a *app) announceSwitch(role audioctl.DeviceRole, record audioctl.DeviceRecord) {
	a.notifier.Notify(
		fmt.Sprintf("Default %s device changed", role),
		record.Name,
	)
}

func roleArg(args []string) (audioctl.DeviceRole, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing role (input, output, system, all)")
	}
	return audioctl.ParseRole(args[0])
}
