package config

type WorkerKeyStruct struct {
	PersistOrderQueue    string
	SessionActivityQueue string
	TopicProgressQueue   string
}

var WorkerKey = &WorkerKeyStruct{
	PersistOrderQueue:    "persist_order_queue",
	SessionActivityQueue: "session_activity_queue",
	TopicProgressQueue:   "topic_progress_queue",
}
