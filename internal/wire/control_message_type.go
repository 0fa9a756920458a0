package wire

type controlMessageType uint64

// Control message types. All values fit into a single varint byte, which
// the control stream framing relies on.
const (
	messageTypeSubscribeUpdate       controlMessageType = 0x02
	messageTypeSubscribe             controlMessageType = 0x03
	messageTypeSubscribeOk           controlMessageType = 0x04
	messageTypeSubscribeError        controlMessageType = 0x05
	messageTypePublishNamespace      controlMessageType = 0x06
	messageTypePublishNamespaceOk    controlMessageType = 0x07
	messageTypePublishNamespaceError controlMessageType = 0x08
	messageTypeUnpublishNamespace    controlMessageType = 0x09
	messageTypeUnsubscribe           controlMessageType = 0x0a
	messageTypePublishDone           controlMessageType = 0x0b
	messageTypeGoAway                controlMessageType = 0x10
	messageTypeMaxRequestID          controlMessageType = 0x15
	messageTypeRequestsBlocked       controlMessageType = 0x1a
	messageTypeClientSetup           controlMessageType = 0x20
	messageTypeServerSetup           controlMessageType = 0x21
)

func (mt controlMessageType) String() string {
	switch mt {
	case messageTypeSubscribeUpdate:
		return "SubscribeUpdateMessage"
	case messageTypeSubscribe:
		return "SubscribeMessage"
	case messageTypeSubscribeOk:
		return "SubscribeOkMessage"
	case messageTypeSubscribeError:
		return "SubscribeErrorMessage"
	case messageTypePublishNamespace:
		return "PublishNamespaceMessage"
	case messageTypePublishNamespaceOk:
		return "PublishNamespaceOkMessage"
	case messageTypePublishNamespaceError:
		return "PublishNamespaceErrorMessage"
	case messageTypeUnpublishNamespace:
		return "UnpublishNamespaceMessage"
	case messageTypeUnsubscribe:
		return "UnsubscribeMessage"
	case messageTypePublishDone:
		return "PublishDoneMessage"
	case messageTypeGoAway:
		return "GoAwayMessage"
	case messageTypeMaxRequestID:
		return "MaxRequestIDMessage"
	case messageTypeRequestsBlocked:
		return "RequestsBlockedMessage"
	case messageTypeClientSetup:
		return "ClientSetupMessage"
	case messageTypeServerSetup:
		return "ServerSetupMessage"
	}
	return "unknown message type"
}
