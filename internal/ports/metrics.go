package ports

type ServerMetrics interface {
	RequestHandled(kind string, status string)
	DeliveryAttempted(ok bool)
	ClientEvicted()
	RecordDiscarded()
	ClientsConnected(n int)
}

type NopMetrics struct{}

func (NopMetrics) RequestHandled(string, string) {}
func (NopMetrics) DeliveryAttempted(bool)        {}
func (NopMetrics) ClientEvicted()                {}
func (NopMetrics) RecordDiscarded()              {}
func (NopMetrics) ClientsConnected(int)          {}
