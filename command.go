package main

import (
	"os/exec"
)

type command struct {
	Path       string   `json:"path"`
	Args       []string `json:"args"`
	EnvUpdates []string `json:"env_updates,omitempty"`
}

func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.Path, cmd.Args...)
	// Later entries win for duplicate keys.
	execCmd.Env = append(env.environ(), cmd.EnvUpdates...)
	execCmd.Dir = env.getwd()
	return execCmd
}

type commandBuilder struct {
	path       string
	args       []builderArg
	envUpdates []string
	env        env
	cfg        *config
}

type builderArg struct {
	value    string
	fromUser bool
}

func newCommandBuilder(env env, cfg *config, userArgs []string) *commandBuilder {
	return &commandBuilder{
		path: cfg.rustc,
		args: createBuilderArgs( /*fromUser=*/ true, userArgs),
		env:  env,
		cfg:  cfg,
	}
}

func createBuilderArgs(fromUser bool, args []string) []builderArg {
	builderArgs := make([]builderArg, len(args))
	for i, arg := range args {
		builderArgs[i] = builderArg{value: arg, fromUser: fromUser}
	}
	return builderArgs
}

func (builder *commandBuilder) addPreUserArgs(args ...string) {
	index := 0
	for _, arg := range builder.args {
		if arg.fromUser {
			break
		}
		index++
	}
	builder.args = append(builder.args[:index], append(createBuilderArgs( /*fromUser=*/ false, args), builder.args[index:]...)...)
}

func (builder *commandBuilder) updateEnv(updates ...string) {
	builder.envUpdates = append(builder.envUpdates, updates...)
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, len(builder.args))
	for i, builderArg := range builder.args {
		cmdArgs[i] = builderArg.value
	}
	return &command{
		Path:       builder.path,
		Args:       cmdArgs,
		EnvUpdates: builder.envUpdates,
	}
}
