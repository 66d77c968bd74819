package channel

type Channel string

const ToolEvents Channel = "toolfinder:events"
