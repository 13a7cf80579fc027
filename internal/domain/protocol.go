package domain

const (
	MessageNewClient       = "new_client"
	MessageDisconnect      = "disconnect_client"
	MessageCheckConnection = "check_connection"

	StatusOK   Status = "OK"
	StatusFAIL Status = "FAIL"
)

type Status string

func StatusFromBool(ok bool) Status {
	if ok {
		return StatusOK
	}

	return StatusFAIL
}

// Request is written by a client into the server channel.
type Request struct {
	SeqLen  int32
	Global  bool
	System  bool
	Origin  ClientID
	Dest    ClientID
	Message string
}

// Response is written by the server into a client channel. System responses
// carry a Status in Message; chat deliveries have System unset.
type Response struct {
	SeqNum  int32
	Global  bool
	System  bool
	Origin  ClientID
	Dest    ClientID
	Message string
}

func (r Response) Status() Status {
	if !r.System {
		return ""
	}

	return Status(r.Message)
}

func (r Response) OK() bool {
	return r.Status() == StatusOK
}

func systemRequest(origin ClientID, message string) Request {
	return Request{
		SeqLen:  RecordSize,
		System:  true,
		Origin:  origin,
		Message: message,
	}
}

func ConnectRequest(origin ClientID) Request {
	return systemRequest(origin, MessageNewClient)
}

func DisconnectRequest(origin ClientID) Request {
	return systemRequest(origin, MessageDisconnect)
}

func CheckConnectionRequest(origin ClientID) Request {
	return systemRequest(origin, MessageCheckConnection)
}

func DirectMessage(origin, dest ClientID, message string) Request {
	return Request{
		SeqLen:  RecordSize,
		Origin:  origin,
		Dest:    dest,
		Message: message,
	}
}

func GlobalMessage(origin ClientID, message string) Request {
	return Request{
		SeqLen:  RecordSize,
		Global:  true,
		Origin:  origin,
		Message: message,
	}
}

func Ack(dest ClientID, seq int32, status Status) Response {
	return Response{
		SeqNum:  seq,
		System:  true,
		Dest:    dest,
		Message: string(status),
	}
}

// Delivery is the record a recipient receives for a chat request.
func Delivery(req Request, recipient ClientID, seq int32) Response {
	return Response{
		SeqNum:  seq,
		Global:  req.Global,
		Origin:  req.Origin,
		Dest:    recipient,
		Message: req.Message,
	}
}
