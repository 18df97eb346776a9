package filters

import (
	"logview/internal/config/logger"
)

// loggingObserver writes a debug line for every event of one model
type loggingObserver struct {
	log   logger.Logger
	label string
}

// NewLoggingObserver creates an observer that logs events under the given model label
func NewLoggingObserver(log logger.Logger, label string) Observer {
	return &loggingObserver{log: log, label: label}
}

func (l *loggingObserver) OnFilterAdded(_ FilterModel, filter, before Filter) {
	l.log.Debug().Str("model", l.label).Str("filter", Describe(filter)).Str("before", Describe(before)).Msg("Filter added")
}

func (l *loggingObserver) OnFilterRemoved(_ FilterModel, filter Filter) {
	l.log.Debug().Str("model", l.label).Str("filter", Describe(filter)).Msg("Filter removed")
}

func (l *loggingObserver) OnFilterReplaced(_ FilterModel, oldFilter, newFilter Filter) {
	l.log.Debug().Str("model", l.label).Str("old", Describe(oldFilter)).Str("new", Describe(newFilter)).Msg("Filter replaced")
}

func (l *loggingObserver) OnFilterMoved(_ FilterModel, filter Filter) {
	l.log.Debug().Str("model", l.label).Str("filter", Describe(filter)).Msg("Filter moved")
}

func (l *loggingObserver) OnSubModelCreated(_, _ FilterModel, boundary ChildModelFilter) {
	l.log.Debug().Str("model", l.label).Str("boundary", Describe(boundary)).Msg("Sub-model created")
}

func (l *loggingObserver) OnSubModelRemoved(_, _ FilterModel, boundary ChildModelFilter) {
	l.log.Debug().Str("model", l.label).Str("boundary", Describe(boundary)).Msg("Sub-model removed")
}
