// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/liftgo/lift/request"
)

// buildTLSConfig translates a request.TLSConfig into a *tls.Config.
//
// Go's crypto/tls couples peer-chain verification and hostname
// verification into one VerifyConnection step, whereas the
// specification (following curl's SSL_VERIFYPEER/SSL_VERIFYHOST
// split) treats them as independently toggleable. To honor both
// combinations, when either flag is off we set InsecureSkipVerify and
// install a VerifyPeerCertificate/VerifyConnection callback that
// performs only the checks the caller asked for.
func buildTLSConfig(cfg *request.TLSConfig, serverName string) (*tls.Config, error) {
	tc := &tls.Config{ServerName: serverName}

	verifyPeer := cfg.VerifyPeer == nil || *cfg.VerifyPeer
	verifyHost := cfg.VerifyHost == nil || *cfg.VerifyHost

	if !verifyPeer || !verifyHost {
		tc.InsecureSkipVerify = true
		tc.VerifyConnection = func(cs tls.ConnectionState) error {
			if verifyPeer {
				opts := x509.VerifyOptions{
					Roots:         nil, // system roots
					Intermediates: x509.NewCertPool(),
					DNSName:       "",
				}
				for _, cert := range cs.PeerCertificates[1:] {
					opts.Intermediates.AddCert(cert)
				}
				if verifyHost {
					opts.DNSName = cs.ServerName
				}
				if len(cs.PeerCertificates) == 0 {
					return fmt.Errorf("transport: no peer certificates presented")
				}
				if _, err := cs.PeerCertificates[0].Verify(opts); err != nil {
					return err
				}
			} else if verifyHost {
				if len(cs.PeerCertificates) == 0 {
					return fmt.Errorf("transport: no peer certificates presented")
				}
				if err := cs.PeerCertificates[0].VerifyHostname(cs.ServerName); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if cfg.CertPath != "" {
		cert, err := loadClientCert(cfg)
		if err != nil {
			return nil, err
		}
		tc.Certificates = []tls.Certificate{cert}
	}

	return tc, nil
}

// loadClientCert loads a client certificate and, if given, its
// private key, honoring CertType (PEM or DER) and an optional
// passphrase on the key.
func loadClientCert(cfg *request.TLSConfig) (tls.Certificate, error) {
	certBytes, err := os.ReadFile(cfg.CertPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("transport: reading client cert: %w", err)
	}

	var keyBytes []byte
	if cfg.KeyPath != "" {
		keyBytes, err = os.ReadFile(cfg.KeyPath)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("transport: reading client key: %w", err)
		}
	}

	if cfg.CertType == request.CertDER {
		return loadDERCert(certBytes, keyBytes)
	}
	return loadPEMCert(certBytes, keyBytes, cfg.KeyPassphrase)
}

func loadPEMCert(certPEM, keyPEM []byte, passphrase string) (tls.Certificate, error) {
	if passphrase != "" {
		block, _ := pem.Decode(keyPEM)
		if block == nil {
			return tls.Certificate{}, fmt.Errorf("transport: no PEM block found in client key")
		}
		//lint:ignore SA1019 legacy encrypted PEM keys must still be supported.
		decrypted, err := x509.DecryptPEMBlock(block, []byte(passphrase))
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("transport: decrypting client key: %w", err)
		}
		keyPEM = pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: decrypted})
	}
	return tls.X509KeyPair(certPEM, keyPEM)
}

func loadDERCert(certDER, keyDER []byte) (tls.Certificate, error) {
	cert, err := x509.ParseCertificate(certDER)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("transport: parsing DER client cert: %w", err)
	}
	tlsCert := tls.Certificate{Certificate: [][]byte{cert.Raw}, Leaf: cert}
	if keyDER != nil {
		key, err := x509.ParsePKCS8PrivateKey(keyDER)
		if err != nil {
			key, err = x509.ParsePKCS1PrivateKey(keyDER)
			if err != nil {
				return tls.Certificate{}, fmt.Errorf("transport: parsing DER client key: %w", err)
			}
		}
		tlsCert.PrivateKey = key
	}
	return tlsCert, nil
}
