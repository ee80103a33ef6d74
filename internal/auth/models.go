package auth

// Request and response bodies of the Identity Toolkit v1 API.

type passwordRequest struct {
	Email             string `json:"email,omitempty"`
	Password          string `json:"password,omitempty"`
	IDToken           string `json:"idToken,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type idpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	IDToken             string `json:"idToken,omitempty"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
}

type tokenRequest struct {
	IDToken string `json:"idToken"`
}

type oobRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type providerInfo struct {
	ProviderID string `json:"providerId"`
	Email      string `json:"email,omitempty"`
}

type tokenResponse struct {
	LocalID          string         `json:"localId"`
	Email            string         `json:"email"`
	IDToken          string         `json:"idToken"`
	RefreshToken     string         `json:"refreshToken"`
	ExpiresIn        string         `json:"expiresIn"`
	ProviderID       string         `json:"providerId"`
	ProviderUserInfo []providerInfo `json:"providerUserInfo"`
}

type lookupResponse struct {
	Users []struct {
		LocalID          string         `json:"localId"`
		Email            string         `json:"email"`
		ProviderUserInfo []providerInfo `json:"providerUserInfo"`
	} `json:"users"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
