package events

import "reflect"

// ExtractGameID pulls the GameID field out of any event struct.
func ExtractGameID(event Event) string {
	val := reflect.ValueOf(event)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		gameID := val.FieldByName("GameID")
		if gameID.IsValid() && gameID.Kind() == reflect.String {
			return gameID.String()
		}
	}

	return ""
}

// ExtractPlayerID pulls the PlayerID field out of any event struct,
// returning "" for events with no single owning player.
func ExtractPlayerID(event Event) string {
	val := reflect.ValueOf(event)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	if val.Kind() == reflect.Struct {
		playerID := val.FieldByName("PlayerID")
		if playerID.IsValid() && playerID.Kind() == reflect.String {
			return playerID.String()
		}
	}

	return ""
}
