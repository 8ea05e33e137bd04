package config

// mergeAgents merges built-in and user-defined agent configurations.
// User-defined agents override built-in agents with the same name.
func mergeAgents(builtinAgents map[string]AgentConfig, userAgents map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig)

	for name, builtin := range builtinAgents {
		agentCopy := builtin
		// Defensive copies of slices to prevent shared state
		agentCopy.Capabilities = append([]string(nil), builtin.Capabilities...)
		agentCopy.ToolServers = append([]string(nil), builtin.ToolServers...)
		result[name] = &agentCopy
	}

	for name, userAgent := range userAgents {
		agentCopy := userAgent
		result[name] = &agentCopy
	}

	return result
}

// mergeToolServers merges built-in and user-defined tool server
// configurations. User-defined servers override built-in servers with the
// same ID.
func mergeToolServers(builtinServers, userServers map[string]ToolServerConfig) map[string]*ToolServerConfig {
	result := make(map[string]*ToolServerConfig)

	for id, server := range builtinServers {
		serverCopy := server
		result[id] = &serverCopy
	}
	for id, userServer := range userServers {
		serverCopy := userServer
		result[id] = &serverCopy
	}

	return result
}

// mergeWorkflows merges built-in and user-defined workflow configurations.
// User-defined workflows override built-in workflows with the same name.
func mergeWorkflows(builtinWorkflows, userWorkflows map[string]WorkflowConfig) map[string]*WorkflowConfig {
	result := make(map[string]*WorkflowConfig)

	for name, wf := range builtinWorkflows {
		wfCopy := wf
		result[name] = &wfCopy
	}
	for name, userWf := range userWorkflows {
		wfCopy := userWf
		result[name] = &wfCopy
	}

	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider
// configurations. User-defined providers override built-in providers with
// the same name.
func mergeLLMProviders(builtinProviders, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}
