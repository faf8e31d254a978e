package services

// User-facing notification texts.
const (
	MsgLoginSuccess     = "Login successful!"
	MsgLoginNoToken     = "Authentication failed. Please try again."
	MsgLoginFailed      = "Login failed. Please check your credentials."
	MsgLoggedOut        = "Signed out"
	MsgFetchFailed      = "Failed to fetch users"
	MsgUpdateSuccess    = "User updated successfully"
	MsgUpdateFailed     = "Failed to update user"
	MsgFieldsRequired   = "All fields are required"
	MsgDeleteSuccess    = "User deleted successfully"
	MsgDeleteFailed     = "Failed to delete user"
	MsgUserNotOnPage    = "User not found on this page"
	MsgNotAuthenticated = "Please sign in first"
)
